// Package textutil sanitizes user-supplied text for use as path segments.
package textutil
