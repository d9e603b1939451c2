package domain

// Identity is the externally verified principal behind a claim, typically
// a wallet address. The core trusts it as already authenticated; signature
// verification happens in the wallet collaborator, never here.
type Identity = string

// Claim is a permanent binding between an identity and a handle. Once a
// handle is claimed it cannot be transferred or released.
type Claim struct {
	ID       int64
	Handle   string
	Identity Identity
	Created  int64
}
