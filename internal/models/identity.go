package models

// Identity is the opaque caller principal supplied by the transport.
type Identity string

// Anonymous is used when the transport could not establish a caller.
const Anonymous Identity = ""

// OracleStore holds a flag for every authorized oracle. Presence means authorized.
type OracleStore = KeyedStore[Identity, bool]

func NewOracleStore() *OracleStore {
	return NewKeyedStore[Identity, bool]()
}
