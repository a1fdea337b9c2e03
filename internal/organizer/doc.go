// Package organizer moves classified ebooks into genre folders under the
// library root. Folder names are normalized so near-duplicate genre spellings
// collapse into one directory, and filename collisions are resolved with a
// numeric suffix rather than overwriting.
package organizer
