/*
Package ansi tokenizes, strips and re-wraps ANSI escape sequences.

It is the foundation of the rendering engine: every width computation in
termrender goes through VisibleWidth, which counts code points after all
escape sequences are removed.

# Recognized sequences

  - CSI: ESC [ followed by parameter bytes (0x30–0x3F), intermediate bytes
    (0x20–0x2F) and one final byte (0x40–0x7E). The 8-bit form 0x9B is accepted too.
  - OSC: ESC ] terminated by BEL or ST (ESC \). Used for OSC-8 hyperlinks.
  - Two-byte escapes: ESC followed by a single byte in 0x30–0x7E, such as ESC 7.

Anything else is literal text, including unterminated fragments and a lone ESC.
None of the functions in this package fail.

# Vocabulary

The package also exports the exact sequences the engine emits: cursor movement,
line and screen erasure, cursor visibility, scrolling, synchronized output and
hyperlinks.
*/
package ansi
