// Package ports defines the interfaces between the host application and the
// navigation core. The Navigator port is implemented by the application layer
// and called by host code. Health ports are shared with the platform layer.
package ports
