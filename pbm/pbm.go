/*
Package pbm implements a binary PBM ("P4") image encoder and decoder.

The format is an ASCII header of the magic "P4" followed by the width and
height in decimal, then the pixel rows. Each row is packed one bit per pixel,
most-significant-bit first, a set bit meaning black. Rows are padded with
zero bits to a whole number of bytes, so every row occupies ceil(width/8)
bytes and starts on a byte boundary.
*/
package pbm

const magic = "P4"
