// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// ActionKind identifies what a confirmed action will do.
type ActionKind int

// Confirmable actions.
const (
	ActionInstall ActionKind = iota
	ActionUninstall
	ActionUpgrade
	ActionBulkUpgrade
	ActionInstallTool
)

// ToolName is the display name of the managed package manager.
const ToolName = "Homebrew"

// ConfirmAction is an action awaiting user confirmation.
type ConfirmAction struct {
	Kind  ActionKind
	Names []string
}

// InstallAction returns an install action for name.
func InstallAction(name string) ConfirmAction {
	return ConfirmAction{Kind: ActionInstall, Names: []string{name}}
}

// UninstallAction returns an uninstall action for name.
func UninstallAction(name string) ConfirmAction {
	return ConfirmAction{Kind: ActionUninstall, Names: []string{name}}
}

// UpgradeAction returns an upgrade action for name.
func UpgradeAction(name string) ConfirmAction {
	return ConfirmAction{Kind: ActionUpgrade, Names: []string{name}}
}

// BulkUpgradeAction returns an upgrade action covering several packages.
func BulkUpgradeAction(names []string) ConfirmAction {
	return ConfirmAction{Kind: ActionBulkUpgrade, Names: append([]string(nil), names...)}
}

// InstallToolAction returns the action bootstrapping the package manager itself.
func InstallToolAction() ConfirmAction {
	return ConfirmAction{Kind: ActionInstallTool}
}

// Verb returns the package manager subcommand for the action.
func (a ConfirmAction) Verb() string {
	switch a.Kind {
	case ActionInstall:
		return "install"
	case ActionUninstall:
		return "uninstall"
	case ActionUpgrade, ActionBulkUpgrade:
		return "upgrade"
	case ActionInstallTool:
		return "install-homebrew"
	default:
		return ""
	}
}

// Label returns the human readable action name used in prompts and summaries.
func (a ConfirmAction) Label() string {
	switch a.Kind {
	case ActionInstall:
		return "Install"
	case ActionUninstall:
		return "Uninstall"
	case ActionUpgrade:
		return "Upgrade"
	case ActionBulkUpgrade:
		return "Bulk Upgrade"
	case ActionInstallTool:
		return "Install " + ToolName
	default:
		return "Unknown"
	}
}

// Operation is a long running external command whose output is streamed.
type Operation struct {
	Title   string
	Command string
	Args    []string
	// Reload requests an installed-list reload after a successful run.
	Reload bool
}
