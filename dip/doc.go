// Package dip demonstrates the dependency inversion principle.
//
// NotificationService depends on the MessageSender abstraction and receives
// its sender at construction. Swapping email for SMS is a different value at
// the composition root, never a change to the service.
package dip
