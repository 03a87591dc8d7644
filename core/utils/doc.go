// Package utils provides common utility functions for the text-share application.
// It includes helpers for type conversion and other shared logic that doesn't
// fit into feature packages.
package utils
