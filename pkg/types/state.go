package types

import (
	"fmt"
	"sync"
)

// State is the lifecycle position of a shell.
// A shell only ever moves forward: Created -> Running -> Terminated.
type State int

const (
	// Created is the state of a freshly selected shell that owns no resources yet
	Created State = iota
	// Running means the shell's interaction loop is active
	Running
	// Terminated means the loop has returned and resources are released
	Terminated
)

// String returns the lower-case name of the state
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Lifecycle tracks the state of a single shell instance.
// The zero value is a shell in the Created state. It is safe to read
// from any goroutine while the shell's loop moves it forward.
type Lifecycle struct {
	mu    sync.Mutex
	state State
}

// State returns the current state
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Start moves Created to Running. It reports false if the shell was
// already started, in which case the state is left untouched.
func (l *Lifecycle) Start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Created {
		return false
	}
	l.state = Running
	return true
}

// Stop marks the shell as Terminated.
func (l *Lifecycle) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = Terminated
}
