package types

// Network identifies a Solana cluster.
type Network string

const (
	NetworkMainnet Network = "mainnet-beta"
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
	NetworkLocal   Network = "localnet"
)

// DefaultRPCEndpoints maps each public cluster to its stock RPC endpoint.
// Production deployments are expected to override these with a dedicated
// provider via ClientConfig.RPCUrl.
var DefaultRPCEndpoints = map[Network]string{
	NetworkMainnet: "https://api.mainnet-beta.solana.com",
	NetworkDevnet:  "https://api.devnet.solana.com",
	NetworkTestnet: "https://api.testnet.solana.com",
	NetworkLocal:   "http://127.0.0.1:8899",
}

func (n Network) IsMainnet() bool {
	return n == NetworkMainnet
}

func (n Network) IsTestnet() bool {
	return n == NetworkDevnet || n == NetworkTestnet || n == NetworkLocal
}

// IsKnown reports whether n names one of the supported clusters.
func (n Network) IsKnown() bool {
	_, ok := DefaultRPCEndpoints[n]
	return ok
}

func (n Network) String() string {
	return string(n)
}
