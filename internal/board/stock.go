package board

import "fmt"

// Draw turns the top stock card onto the waste. With an empty stock it
// recycles instead: the waste is popped back onto the stock one card at a
// time, so the next pass draws the cards in the same order as before.
func (b *Board) Draw() (Snapshot, error) {
	if b.selection != nil {
		return Snapshot{}, fmt.Errorf("%w: %s is selected", ErrStockAndWasteBusy, b.selection.Source)
	}

	if id, ok := top(b.stock); ok {
		b.stock = b.stock[:len(b.stock)-1]
		b.waste = append(b.waste, id)
		b.logger.Debug("card drawn", "card", id.String(), "stock", len(b.stock))
		return b.Snapshot(), nil
	}

	n := len(b.waste)
	for len(b.waste) > 0 {
		last := len(b.waste) - 1
		b.stock = append(b.stock, b.waste[last])
		b.waste = b.waste[:last]
	}
	b.logger.Debug("stock recycled", "cards", n)
	return b.Snapshot(), nil
}

// CanDraw reports whether Draw would be accepted
func (b *Board) CanDraw() bool {
	return b.selection == nil
}
