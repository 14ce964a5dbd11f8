// Package main provides the entry point of newtab, a self hosted browser new
// tab page. The start command serves the page with the Fiber framework and
// keeps settings and bookmarks in a gorm database or a gofiber storage
// backend. The remaining commands export, import and reset that state from
// the shell.
package main
