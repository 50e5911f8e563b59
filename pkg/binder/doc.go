// Package binder decodes HTTP request bodies into typed request structs.
package binder
