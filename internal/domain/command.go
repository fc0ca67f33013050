package domain

// CallbackButton is one inline button: a caption and the opaque
// payload delivered back when the button is tapped.
type CallbackButton struct {
	Caption string
	Payload string
}

// Command is the sole output of the event extractor and the sole
// input of the command interpreter. Commands are immutable values
// carrying no behavior; every variant except NoAction names the
// recipient the reply goes to.
type Command interface {
	isCommand()
}

// NoAction means the update is ignored. Not an error.
type NoAction struct{}

// SendNoContent reports an update that carried neither message text
// nor callback data.
type SendNoContent struct {
	To Recipient
}

// SendTinIsInvalid reports a /check argument that is not a valid TIN.
type SendTinIsInvalid struct {
	To Recipient
}

// SendCompanyNotFound reports a valid TIN unknown to the provider.
type SendCompanyNotFound struct {
	To Recipient
}

// SendGreetings replies to /start.
type SendGreetings struct {
	To Recipient
}

// SendHelp replies to /help.
type SendHelp struct {
	To Recipient
}

// SendModeSelection presents the mode menu as an inline button grid.
type SendModeSelection struct {
	To      Recipient
	Buttons []CallbackButton
	PerRow  int
}

// SendGeneralReport delivers a rendered general report.
type SendGeneralReport struct {
	To   Recipient
	Text string
}

// SendLegalEntityReport delivers a rendered legal report together
// with drill-down buttons for domestic company shareholders.
type SendLegalEntityReport struct {
	To      Recipient
	Text    string
	Buttons []CallbackButton
	PerRow  int
}

// SendReviewsReport delivers the reviews report (placeholder while
// the upstream source is in development).
type SendReviewsReport struct {
	To   Recipient
	Text string
}

// SendSalariesReport delivers the salaries report (placeholder while
// the upstream source is in development).
type SendSalariesReport struct {
	To   Recipient
	Text string
}

// SendModeConfirmed acknowledges a mode change. OriginalMessageID is
// the message whose button grid must be cleared.
type SendModeConfirmed struct {
	To                Recipient
	Mode              Mode
	OriginalMessageID int
}

func (NoAction) isCommand()              {}
func (SendNoContent) isCommand()         {}
func (SendTinIsInvalid) isCommand()      {}
func (SendCompanyNotFound) isCommand()   {}
func (SendGreetings) isCommand()         {}
func (SendHelp) isCommand()              {}
func (SendModeSelection) isCommand()     {}
func (SendGeneralReport) isCommand()     {}
func (SendLegalEntityReport) isCommand() {}
func (SendReviewsReport) isCommand()     {}
func (SendSalariesReport) isCommand()    {}
func (SendModeConfirmed) isCommand()     {}
