// Package screen implements the dialog state machine of the to-do screen.
//
// A Controller owns the task store and its list presenter. Every event goes
// through Dispatch, which moves between four modes:
//
//	Idle --add--> ComposingNew --confirm/cancel--> Idle
//	Idle --open/edit--> ComposingEdit --confirm/cancel--> Idle
//	Idle --delete--> ConfirmingDelete --confirm/cancel--> Idle
//
// Each store mutation is paired with exactly one presenter notification for
// the same index. Side effects that need the platform (notifications, sound,
// alarms, transient messages) are returned from Dispatch as Effects and run
// by the caller after the mutation has been committed. The controller itself
// performs no I/O.
//
// Compose sessions collect picker results in a Draft that lives only as long
// as the session. How date and time picks behave while editing an existing
// task is set by EditPolicy.
package screen
