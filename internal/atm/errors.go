package atm

// Rejection is a domain failure whose text is shown to the customer as-is.
type Rejection struct {
	msg string
}

func NewRejection(msg string) *Rejection {
	return &Rejection{msg: msg}
}

func (r *Rejection) Error() string {
	return r.msg
}

var (
	// Account operations
	ErrInvalidAmount     = NewRejection("Invalid amount. Please enter a positive value.")
	ErrInsufficientFunds = NewRejection("Insufficient funds.")
	ErrIncorrectOldPIN   = NewRejection("Incorrect PIN. Unable to change PIN.")
	ErrNewPINLength      = NewRejection("New PIN must be 4 digits.")

	// Presentation checks
	ErrIncorrectPIN = NewRejection("Incorrect PIN.")
)
