// Package config loads termrender settings. Embedded defaults are merged
// with an optional user file and TERMRENDER_* environment variables, later
// layers winning.
package config
