// Package executor provides the Executor aggregate for the driver roster.
// An executor is a driver/vehicle resource with a duty state that
// dispatchers flip as drivers come on and off shift.
package executor
