// Package encoder maps free-form text onto a fixed 26-dimensional
// letter-frequency embedding. Slot i counts occurrences of the lowercase
// Latin letter 'a'+i; all other runes are ignored.
package encoder
