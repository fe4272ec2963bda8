// Package uniuri generates random strings usable as html element identifiers.
// Randomness comes from crypto/rand, characters are picked without modulo bias.
package uniuri
