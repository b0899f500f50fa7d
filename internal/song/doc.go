// Package song defines the in-memory model of a level package descriptor.
//
// A Song owns an ordered list of CharacteristicSets, each owning an ordered
// list of Difficulties. Order is significant: it drives display order in
// editors and is preserved through every read and write.
//
// A Difficulty refers back to its parent set by index into Song.Sets rather
// than by pointer. Reparent only updates that index; moving an entry between
// lists is the caller's job.
//
// The model has no I/O. See package infodat for reading and writing info.dat.
package song
