// Package store defines the key-value persistence used to keep the bearer token
// between requests and process restarts.
//
// Store is a small Get/Set/Remove contract over string keys, comparable to the
// browser local storage. The package ships with in-memory, file (afs), redis,
// SQL and encrypted (scy) implementations; TokenStore layers the access token
// slot on top of any of them.
package store
