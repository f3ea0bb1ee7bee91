// Package clipboard copies key material to the system clipboard. The
// backend is configuration-driven: wl-copy for Wayland sessions, xclip for
// X11, or library auto-detection when neither is forced.
package clipboard
