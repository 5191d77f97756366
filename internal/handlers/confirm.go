package handlers

// ConfirmState models the destructive-action confirmation flow explicitly,
// instead of relying on a browser-native dialog.
type ConfirmState int

const (
	ConfirmIdle ConfirmState = iota
	ConfirmPending
	Confirmed
	Cancelled
)

// Confirm tracks one pending deletion. The network call may only be issued
// from the Confirmed state; a declined confirmation stays a no-op.
type Confirm struct {
	state  ConfirmState
	target string
}

func NewConfirm() *Confirm {
	return &Confirm{state: ConfirmIdle}
}

func (m *Confirm) State() ConfirmState { return m.state }

// Target is the id awaiting confirmation; empty unless a request was made.
func (m *Confirm) Target() string { return m.target }

func (m *Confirm) Request(id string) {
	if m.state == ConfirmIdle && id != "" {
		m.state = ConfirmPending
		m.target = id
	}
}

func (m *Confirm) Accept() {
	if m.state == ConfirmPending {
		m.state = Confirmed
	}
}

func (m *Confirm) Decline() {
	if m.state == ConfirmPending {
		m.state = Cancelled
	}
}
