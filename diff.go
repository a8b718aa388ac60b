package netbook

// Action is one tagged step of a ledger transition. The set of actions is
// closed: AddPosition, RemovePosition, ModifyPosition and CreateDeal.
// Consumers switch exhaustively on the concrete type and treat any other
// type as a defect.
type Action interface {
	// Applied returns the position the action ultimately contributes or
	// removes, for downstream inspection.
	Applied() Position

	isAction()
}

// AddPosition opens a position in an empty slot.
type AddPosition struct {
	Position Position
}

// RemovePosition closes a position, emptying its slot.
type RemovePosition struct {
	Position Position
}

// ModifyPosition supersedes Old with New in the same slot.
type ModifyPosition struct {
	Old Position
	New Position
}

// CreateDeal records a realized close. It has no effect on the book itself;
// it is surfaced through the diff for downstream consumers.
type CreateDeal struct {
	Deal Deal
}

func (a AddPosition) Applied() Position    { return a.Position }
func (a RemovePosition) Applied() Position { return a.Position }
func (a ModifyPosition) Applied() Position { return a.New }
func (a CreateDeal) Applied() Position     { return a.Deal.Position() }

func (AddPosition) isAction()    {}
func (RemovePosition) isAction() {}
func (ModifyPosition) isAction() {}
func (CreateDeal) isAction()     {}

// Diff is the ordered sequence of actions describing exactly one ledger
// transition.
type Diff []Action

// FirstDeal returns the first CreateDeal action's deal, if any.
func (d Diff) FirstDeal() (Deal, bool) {
	for _, a := range d {
		if c, ok := a.(CreateDeal); ok {
			return c.Deal, true
		}
	}
	return Deal{}, false
}

// Deals returns every deal carried by the diff, in order.
func (d Diff) Deals() []Deal {
	var deals []Deal
	for _, a := range d {
		if c, ok := a.(CreateDeal); ok {
			deals = append(deals, c.Deal)
		}
	}
	return deals
}
