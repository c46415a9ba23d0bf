package queue

import "errors"

var (
	// ErrQueueFull is returned when the reward queue is at capacity.
	ErrQueueFull = errors.New("reward queue is full")
	// ErrQueueClosed is returned once the processor has shut the queue.
	ErrQueueClosed = errors.New("reward queue is closed")
	// ErrAlreadyQueued is returned when the claim is already waiting.
	ErrAlreadyQueued = errors.New("reward claim is already queued")
)
