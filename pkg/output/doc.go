/*
Package output writes finished lines to output channels.

# Lines

WriteLine is the primitive every higher-level writer uses: it left-pads a
line, optionally colors it, wraps it to a width and terminates it with a
newline. Message, Divider, Banner and Link build on it.

# Channels

A Channel is an io.Writer standing in for a process output stream. Stdout and
Stderr wrap the standard streams and are paired, so code that intercepts one
can find the other with Sibling.

A Hook installed on a channel sees every write made through Write. WriteRaw
bypasses the hook; the hook owner uses it to draw its own output.

	err := output.DefaultRegistry.Install(output.Stderr, hook)
	defer output.DefaultRegistry.Remove(output.Stderr, hook)

The Registry enforces that a channel has at most one hook at a time.
*/
package output
