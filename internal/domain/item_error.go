package domain

import (
	"errors"
	"fmt"
)

// ItemError ties an error to the input item that produced it. The index is
// optional: an ItemError may be created before its position in the batch is
// known and tagged later.
type ItemError struct {
	Err error

	index   int
	indexed bool
}

func (e *ItemError) Error() string {
	if !e.indexed {
		return e.Err.Error()
	}
	return fmt.Sprintf("item %d: %v", e.index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// ItemIndex returns the tagged index, if any.
func (e *ItemError) ItemIndex() (int, bool) {
	return e.index, e.indexed
}

// WithItemIndex attaches index to err. If err already is (or wraps) an
// ItemError, that error's index is overwritten and err is returned as-is;
// otherwise err is wrapped in a new ItemError. A nil err stays nil.
func WithItemIndex(err error, index int) error {
	if err == nil {
		return nil
	}
	var ie *ItemError
	if errors.As(err, &ie) {
		ie.index = index
		ie.indexed = true
		return err
	}
	return &ItemError{Err: err, index: index, indexed: true}
}

// ItemIndex reports the item index carried by err, if any.
func ItemIndex(err error) (int, bool) {
	var ie *ItemError
	if errors.As(err, &ie) {
		return ie.ItemIndex()
	}
	return 0, false
}

// TagItemIndex returns a new error tagged with index and never modifies err.
// Use it when the result is stored next to other items' errors, which may
// share the same underlying ItemError value.
func TagItemIndex(err error, index int) error {
	if err == nil {
		return nil
	}
	if ie, ok := err.(*ItemError); ok {
		return &ItemError{Err: ie.Err, index: index, indexed: true}
	}
	return &ItemError{Err: err, index: index, indexed: true}
}
