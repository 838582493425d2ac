// Package pattern holds the in-memory form of a byte-pattern needle.
//
// A needle of n positions is stored as two parallel buffers. word carries
// the literal byte at each position and mask marks wildcards:
//
//	position  0     1     2
//	pattern   78    ?     BC
//	word      0x78  0x00  0xBC  0x00 ...
//	mask      0x00  0xFF  0x00  0xFF ...
//
// Both buffers are 32-byte aligned and padded to a multiple of 32 bytes with
// wildcards, so vector kernels may load whole lanes past the end of the
// needle. A Ref ties the buffers to the kernel (Method) chosen for the
// needle's length and the host CPU.
package pattern
