// Package registry holds named values behind a read/write lock.
//
// Registry[T] is the generic store used for renderers and other named
// components. Countries is the country rule registry: calling codes are
// unique, may be reserved without a rule, and international digit strings
// resolve to the country whose code is their longest registered prefix.
package registry
