// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/errors"
)

// ErrConsistency is the error that all [ConsistencyError]s wrap,
// for use with [errors.Is].
var ErrConsistency = errors.New("inconsistent tree update")

// ConsistencyError is returned by [Store.Apply] for an update that
// would leave the tree inconsistent, such as one with a child id that
// does not resolve to a node. The update is rejected as a whole and
// the store is left unchanged.
type ConsistencyError struct {

	// Reason describes the violation.
	Reason string

	// Node is the node with the violation, if any.
	Node access.NodeID

	// Child is the unresolved child of Node, if any.
	Child access.NodeID
}

func (e *ConsistencyError) Error() string {
	switch {
	case e.Child.IsValid():
		return fmt.Sprintf("%v: %s: node %v has child %v", ErrConsistency, e.Reason, e.Node, e.Child)
	case e.Node.IsValid():
		return fmt.Sprintf("%v: %s: node %v", ErrConsistency, e.Reason, e.Node)
	}
	return fmt.Sprintf("%v: %s", ErrConsistency, e.Reason)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrConsistency
}
