// Package govorbis implements the bit-level codec layer of Vorbis headers in
// pure Go: the LSB-first bit packer, static codebooks and the comment block.
//
// The packages are layered leaves first:
//   - bitpack: bit-granular packet buffer (fields of 1 to 32 bits)
//   - codebook: codeword length tables, vector quantization maps and the
//     Vorbis codebook float format
//   - comment: vendor string and "TAG=value" user comments
//
// This package frames those payloads as header packets and defines the
// Packet type exchanged with a transport layer.
//
// # Header Packets
//
// Vorbis header packets start with a packet type byte and the six bytes
// "vorbis":
//
//	Byte 0:      Packet type (1 identification, 3 comment, 5 setup)
//	Bytes 1-6:   "vorbis"
//	Remaining:   Packet body
//
// The comment header body is a comment block followed by its framing bit.
// The setup header body opens with the codebooks:
//
//	8 bits:      Codebook count - 1
//	For each codebook:
//	  Codebook packet (sync 0x564342, dimensions, entries, lengths, map)
//
// # Non-goals
//
// Audio decoding (floors, residues, MDCT) and Ogg page framing are left to
// other layers; a Packet's stream flags and granule position pass through
// untouched.
package govorbis
