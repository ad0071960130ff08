// Package domain contains the contracts the navigator is built around: the
// Screen and Transition capability interfaces, optional capabilities such as
// Visible, and the sentinel and typed errors shared by every layer.
//
// Nothing in this package depends on the application or platform layers.
package domain
