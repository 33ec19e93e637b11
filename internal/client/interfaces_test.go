package client

import "github.com/AlexZinkM/leochain-explorer/leochain"

var (
	_ leochain.ChainRPC  = (*RPCClient)(nil)
	_ leochain.ChainREST = (*RESTClient)(nil)
)
