package kiosk

type Action int

const (
	ActionCheckBalance Action = iota
	ActionDeposit
	ActionWithdraw
	ActionChangePIN
	ActionViewHistory
	ActionExit
)

// Actions lists the menu entries in display order.
var Actions = []Action{
	ActionCheckBalance,
	ActionDeposit,
	ActionWithdraw,
	ActionChangePIN,
	ActionViewHistory,
	ActionExit,
}

func (a Action) String() string {
	switch a {
	case ActionCheckBalance:
		return "Check Balance"
	case ActionDeposit:
		return "Deposit Cash"
	case ActionWithdraw:
		return "Withdraw Cash"
	case ActionChangePIN:
		return "Change PIN"
	case ActionViewHistory:
		return "View Transaction History"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// popup titles
const (
	TitleError   = "Error"
	titleBalance = "Balance"
	titleDeposit = "Deposit"
	titleWithdr  = "Withdraw"
	titlePIN     = "Change PIN"
	titleHistory = "Transaction History"
)
