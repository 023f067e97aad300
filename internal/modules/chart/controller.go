package chart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tapechart/internal/domain"
	"tapechart/internal/modules/allocation"
	"tapechart/internal/modules/dategrid"
	"tapechart/internal/modules/history"
	"tapechart/internal/modules/split"
)

var (
	// ErrNotDragging means a drag-phase call arrived while idle.
	ErrNotDragging = errors.New("no drag in progress")
	// ErrAlreadyDragging means DragStart arrived mid-gesture.
	ErrAlreadyDragging = errors.New("drag already in progress")
	// ErrNoFocus means a keyboard action arrived without a focused cell.
	ErrNoFocus = errors.New("no cell focused")
)

// State of the gesture machine. Dropping and cancelling are transient:
// both finish inside a single call and land back in idle.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// Position is the half-cell highlight shape for one cell under a drag,
// mirroring where the moved stay's boundaries would fall: a bar runs
// from the middle of its check-in day to the middle of its check-out
// day.
type Position string

const (
	PositionStart  Position = "start"  // right half, check-in day
	PositionMiddle Position = "middle" // full cell
	PositionEnd    Position = "end"    // left half, check-out day
	PositionSingle Position = "single" // right half, one-night stay
)

// Highlight is the rendering hint for one cell under the drag path.
type Highlight struct {
	Cell     dategrid.Cell
	Position Position
}

// IntentKind classifies what a click or Enter should open.
type IntentKind int

const (
	// IntentNone: nothing happens (modifier clicks are reserved for
	// multi-select and must not open an editor or start a drag).
	IntentNone IntentKind = iota
	// IntentCreate: open a new-reservation editor seeded from the cell.
	IntentCreate
	// IntentEdit: open the editor for an existing reservation.
	IntentEdit
)

// Intent is the controller's answer to a click: what the presentation
// layer should open, with the seed data to open it with.
type Intent struct {
	Kind          IntentKind
	Room          string
	CheckIn       string
	ReservationID string
}

type dragState struct {
	reservationID string
	// grabOffset is the night count between the stay's check-in and
	// the grabbed cell, so a bar grabbed by its third night drops with
	// that night under the pointer.
	grabOffset int
}

// Controller turns pointer and keyboard gestures into validated
// allocation changes for one grid view. Construct one per open view
// (front desk, conference grid, parking grid) — it owns that view's
// history store, and nothing is shared between views except the
// room-status signal.
//
// All methods must be called from the view's single event goroutine;
// the only asynchronous boundary is the collaborator round trip, which
// mutating methods await before returning.
type Controller struct {
	client Client
	hist   *history.Store
	window dategrid.Window

	statuses  domain.RoomStatuses
	roomOrder []string

	drag  *dragState
	focus *dategrid.Cell
}

// NewController loads the initial snapshot through the collaborator,
// seeds the history store and caches room statuses.
func NewController(ctx context.Context, client Client, window dategrid.Window) (*Controller, error) {
	snap, err := client.LoadSnapshot(ctx, SnapshotFilter{From: window.Start(), To: dategrid.AddDays(window.Start(), window.Days())})
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	statuses := make(domain.RoomStatuses, len(snap.Rooms))
	order := make([]string, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		statuses[room.Number] = room.Status
		order = append(order, room.Number)
	}

	return &Controller{
		client:    client,
		hist:      history.New(allocation.Set(snap.Reservations)),
		window:    window,
		statuses:  statuses,
		roomOrder: order,
	}, nil
}

// State returns the current gesture state.
func (c *Controller) State() State {
	if c.drag != nil {
		return StateDragging
	}
	return StateIdle
}

// Reservations returns the current (optimistic) reservation set.
func (c *Controller) Reservations() allocation.Set { return c.hist.Present() }

// Window returns the visible date window.
func (c *Controller) Window() dategrid.Window { return c.window }

// SetWindow moves the visible range; reservation state is untouched.
func (c *Controller) SetWindow(w dategrid.Window) { c.window = w }

// RoomStatuses returns the cached housekeeping snapshot.
func (c *Controller) RoomStatuses() domain.RoomStatuses { return c.statuses }

func (c *Controller) CanUndo() bool { return c.hist.CanUndo() }
func (c *Controller) CanRedo() bool { return c.hist.CanRedo() }
func (c *Controller) Undo()         { c.hist.Undo() }
func (c *Controller) Redo()         { c.hist.Redo() }

// Hydrate installs a fresh server snapshot. The previous local history
// is discarded — a server push must not be undoable past.
func (c *Controller) Hydrate(snap domain.Snapshot) {
	c.hist.Hydrate(allocation.Set(snap.Reservations))
	statuses := make(domain.RoomStatuses, len(snap.Rooms))
	order := make([]string, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		statuses[room.Number] = room.Status
		order = append(order, room.Number)
	}
	c.statuses = statuses
	c.roomOrder = order
}

// ApplyRoomStatus folds one cross-surface status event into the cache.
// It never touches the reservation set or its history.
func (c *Controller) ApplyRoomStatus(room string, status domain.RoomStatus) {
	c.statuses[room] = status
}

// RefreshRoomStatuses refetches the full housekeeping snapshot, used
// after the view decides its cache is stale.
func (c *Controller) RefreshRoomStatuses(ctx context.Context) error {
	statuses, err := c.client.RoomStatuses(ctx)
	if err != nil {
		return err
	}
	c.statuses = statuses
	return nil
}

// Click resolves a pointer click on a cell. Modifier clicks are
// reserved for multi-select and yield IntentNone; they must not start
// a drag either.
func (c *Controller) Click(cell dategrid.Cell, modifier bool) Intent {
	if modifier {
		return Intent{Kind: IntentNone}
	}
	if r, ok := allocation.FindAt(c.hist.Present(), cell.Room, cell.Date); ok {
		return Intent{Kind: IntentEdit, ReservationID: r.ID}
	}
	return Intent{Kind: IntentCreate, Room: cell.Room, CheckIn: cell.Date}
}

// DragStart begins a drag on a reservation's bar, grabbed at grabCell.
func (c *Controller) DragStart(reservationID string, grabCell dategrid.Cell) error {
	if c.drag != nil {
		return ErrAlreadyDragging
	}
	r, ok := allocation.ByID(c.hist.Present(), reservationID)
	if !ok {
		return fmt.Errorf("%w: %s", allocation.ErrNotFound, reservationID)
	}
	offset := dategrid.Nights(r.CheckIn, grabCell.Date)
	if offset < 0 {
		offset = 0
	}
	if max := dategrid.Nights(r.CheckIn, r.CheckOut) - 1; offset > max {
		offset = max
	}
	c.drag = &dragState{reservationID: reservationID, grabOffset: offset}
	return nil
}

// DragOver reports the half-cell highlights for the row under the
// pointer, driven by the same date arithmetic as the eventual drop so
// preview and placement can never disagree.
func (c *Controller) DragOver(cell dategrid.Cell) ([]Highlight, error) {
	if c.drag == nil {
		return nil, ErrNotDragging
	}
	r, ok := allocation.ByID(c.hist.Present(), c.drag.reservationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", allocation.ErrNotFound, c.drag.reservationID)
	}

	checkIn, checkOut := candidateRange(r, cell, c.drag.grabOffset)
	nights := dategrid.Nights(checkIn, checkOut)

	var out []Highlight
	// The bar visually covers check-in through check-out day inclusive
	// (half a day on each boundary).
	for date := checkIn; date <= checkOut; date = dategrid.AddDays(date, 1) {
		if !c.window.Contains(date) {
			continue
		}
		pos := PositionMiddle
		switch {
		case date == checkIn && nights == 1:
			pos = PositionSingle
		case date == checkIn:
			pos = PositionStart
		case date == checkOut:
			pos = PositionEnd
		}
		out = append(out, Highlight{Cell: dategrid.Cell{Room: cell.Room, Date: date}, Position: pos})
	}
	return out, nil
}

// CancelDrag aborts the gesture with zero model mutation: pointer
// released outside the grid, or Escape mid-drag.
func (c *Controller) CancelDrag() {
	c.drag = nil
}

// Drop releases the dragged stay over a cell. The candidate placement
// shifts the original stay length so the grabbed night lands on the
// drop cell, runs the single legality gate, applies optimistically and
// awaits the collaborator; any failure rolls the frame back and
// returns the collaborator's reason.
func (c *Controller) Drop(ctx context.Context, cell dategrid.Cell) (domain.Reservation, error) {
	if c.drag == nil {
		return domain.Reservation{}, ErrNotDragging
	}
	drag := c.drag
	c.drag = nil // back to idle whatever happens below

	set := c.hist.Present()
	r, ok := allocation.ByID(set, drag.reservationID)
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: %s", allocation.ErrNotFound, drag.reservationID)
	}
	checkIn, checkOut := candidateRange(r, cell, drag.grabOffset)

	if err := allocation.CheckPlacement(set, allocation.Placement{
		ReservationID: r.ID,
		Room:          cell.Room,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
	}, c.statuses); err != nil {
		return domain.Reservation{}, err
	}

	c.hist.Set(allocation.Move(set, r.ID, cell.Room, checkIn, checkOut))

	confirmed, err := c.client.MoveReservation(ctx, r.ID, cell.Room, checkIn, checkOut)
	if err != nil {
		c.hist.Undo()
		return domain.Reservation{}, err
	}
	c.hist.ReplacePresent(allocation.Replace(c.hist.Present(), r.ID, confirmed))
	return confirmed, nil
}

// CreateReservation lands a new stay through the same gate and
// optimistic protocol as a drop. The draft gets a provisional id; on
// confirmation the server's canonical record takes its place without
// costing an undo frame.
func (c *Controller) CreateReservation(ctx context.Context, draft domain.Reservation) (domain.Reservation, error) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.Status == "" {
		draft.Status = domain.ReservationConfirmed
	}

	set := c.hist.Present()
	if err := allocation.CheckPlacement(set, allocation.Placement{
		Room:     draft.Room,
		CheckIn:  draft.CheckIn,
		CheckOut: draft.CheckOut,
	}, c.statuses); err != nil {
		return domain.Reservation{}, err
	}

	c.hist.Set(allocation.Create(set, draft))

	confirmed, err := c.client.CreateReservation(ctx, draft)
	if err != nil {
		c.hist.Undo()
		return domain.Reservation{}, err
	}
	c.hist.ReplacePresent(allocation.Replace(c.hist.Present(), draft.ID, confirmed))
	return confirmed, nil
}

// Split partitions a stay at splitDate, optionally moving the second
// half to secondRoom. Same optimistic apply and rollback as Drop.
func (c *Controller) Split(ctx context.Context, id, splitDate, secondRoom string) (domain.Reservation, domain.Reservation, error) {
	set := c.hist.Present()
	local, err := split.Split(set, id, splitDate, secondRoom, c.statuses)
	if err != nil {
		return domain.Reservation{}, domain.Reservation{}, err
	}

	c.hist.Set(local.Set)

	first, second, err := c.client.SplitReservation(ctx, id, splitDate, secondRoom)
	if err != nil {
		c.hist.Undo()
		return domain.Reservation{}, domain.Reservation{}, err
	}
	next := allocation.Replace(c.hist.Present(), local.First.ID, first)
	next = allocation.Replace(next, local.Second.ID, second)
	c.hist.ReplacePresent(next)
	return first, second, nil
}

// MoveFocus shifts the keyboard cursor by rows (rooms) and columns
// (dates), clamped to the grid. Before anything is focused the cursor
// moves from the top-left cell.
func (c *Controller) MoveFocus(dRow, dCol int) (dategrid.Cell, bool) {
	if len(c.roomOrder) == 0 || c.window.Days() == 0 {
		return dategrid.Cell{}, false
	}
	row, col := 0, 0
	if c.focus != nil {
		row = c.roomIndex(c.focus.Room)
		col, _ = c.window.Index(c.focus.Date)
	}
	row += dRow
	col += dCol
	row = clamp(row, 0, len(c.roomOrder)-1)
	col = clamp(col, 0, c.window.Days()-1)

	date, _ := c.window.DateAt(col)
	cell := dategrid.Cell{Room: c.roomOrder[row], Date: date}
	c.focus = &cell
	return cell, true
}

// FocusedCell returns the keyboard cursor, if any.
func (c *Controller) FocusedCell() (dategrid.Cell, bool) {
	if c.focus == nil {
		return dategrid.Cell{}, false
	}
	return *c.focus, true
}

// ClearFocus drops the keyboard cursor (Escape while idle).
func (c *Controller) ClearFocus() { c.focus = nil }

// Enter resolves the focused cell exactly like a click — keyboard and
// pointer share one intent path and one legality gate.
func (c *Controller) Enter() (Intent, error) {
	if c.focus == nil {
		return Intent{}, ErrNoFocus
	}
	return c.Click(*c.focus, false), nil
}

// CheckInFocused checks in the CONFIRMED stay under the cursor.
func (c *Controller) CheckInFocused(ctx context.Context) (domain.Reservation, error) {
	return c.transitionFocused(ctx, domain.ReservationConfirmed, domain.ReservationCheckedIn)
}

// CheckOutFocused checks out the CHECKED_IN stay under the cursor.
func (c *Controller) CheckOutFocused(ctx context.Context) (domain.Reservation, error) {
	return c.transitionFocused(ctx, domain.ReservationCheckedIn, domain.ReservationCheckedOut)
}

func (c *Controller) transitionFocused(ctx context.Context, from, to domain.ReservationStatus) (domain.Reservation, error) {
	if c.focus == nil {
		return domain.Reservation{}, ErrNoFocus
	}
	set := c.hist.Present()
	r, ok := allocation.FindAt(set, c.focus.Room, c.focus.Date)
	if !ok || r.Status != from {
		return domain.Reservation{}, fmt.Errorf("%w: no %s reservation at %s", allocation.ErrNotFound, from, c.focus.CellID())
	}

	updated := r
	updated.Status = to
	c.hist.Set(allocation.Replace(set, r.ID, updated))

	confirmed, err := c.client.UpdateReservationStatus(ctx, r.ID, to)
	if err != nil {
		c.hist.Undo()
		return domain.Reservation{}, err
	}
	c.hist.ReplacePresent(allocation.Replace(c.hist.Present(), r.ID, confirmed))
	return confirmed, nil
}

// candidateRange shifts the stay's length so the grabbed night lands
// on the hovered/dropped cell. DragOver and Drop both go through here,
// with the same grab offset, so preview and placement cannot diverge.
func candidateRange(r domain.Reservation, cell dategrid.Cell, grabOffset int) (string, string) {
	nights := dategrid.Nights(r.CheckIn, r.CheckOut)
	checkIn := dategrid.AddDays(cell.Date, -grabOffset)
	return checkIn, dategrid.AddDays(checkIn, nights)
}

func (c *Controller) roomIndex(room string) int {
	for i, n := range c.roomOrder {
		if n == room {
			return i
		}
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
