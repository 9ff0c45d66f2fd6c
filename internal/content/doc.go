// Package content reads Markdown posts from a Hexo-style source directory and
// turns them into the post collection and taxonomy feeds consumed by
// page generation.
package content
