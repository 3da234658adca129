package fsm

type ConversationStep int

const (
	StepIdle ConversationStep = iota
	StepAwaitingCategory
	StepAwaitingService
	StepAwaitingLink
	StepAwaitingQuantity
	StepAwaitingConfirmation
)

type StateData interface {
	StateData()
}

type IdleData struct{}

func (data *IdleData) StateData() {}

// WizardData carries the conversation-local extras the order engine does
// not own: the service keyboard page and the panel identity resolved at
// wizard start.
type WizardData struct {
	PanelUserID int64
	Token       string
	CategoryID  int64
	Page        int
}

func (data *WizardData) StateData() {}
