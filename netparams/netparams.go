// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// Network identifies a chain with a registered segwit address prefix.
type Network int

// Constants for the supported networks.  Each mainnet is followed by its
// test (and, where registered, regression test) variant.
const (
	// Bitcoin is the Bitcoin mainnet.
	Bitcoin Network = iota

	// Testnet is the Bitcoin test network (version 3).
	Testnet

	// Signet is the Bitcoin signet network.
	Signet

	// Regtest is the Bitcoin regression test network.
	Regtest

	// Bellcoin is the Bellcoin mainnet.
	Bellcoin

	// BellcoinTestnet is the Bellcoin test network.
	BellcoinTestnet

	// BitZeny is the BitZeny mainnet.
	BitZeny

	// BitZenyTestnet is the BitZeny test network.
	BitZenyTestnet

	// CranePay is the CranePay mainnet.
	CranePay

	// CranePayTestnet is the CranePay test network.
	CranePayTestnet

	// CryptoComChain is the Crypto.com Chain mainnet.
	CryptoComChain

	// CryptoComChainTestnet is the Crypto.com Chain test network.
	CryptoComChainTestnet

	// DigiByte is the DigiByte mainnet.
	DigiByte

	// DigiByteTestnet is the DigiByte test network.
	DigiByteTestnet

	// FujiCoin is the FujiCoin mainnet.
	FujiCoin

	// FujiCoinTestnet is the FujiCoin test network.
	FujiCoinTestnet

	// Groestlcoin is the Groestlcoin mainnet.
	Groestlcoin

	// GroestlcoinTestnet is the Groestlcoin test network.
	GroestlcoinTestnet

	// Handshake is the Handshake mainnet.
	Handshake

	// HandshakeTestnet is the Handshake test network.
	HandshakeTestnet

	// Litecoin is the Litecoin mainnet.
	Litecoin

	// LitecoinTestnet is the Litecoin test network.
	LitecoinTestnet

	// Monacoin is the Monacoin mainnet.
	Monacoin

	// MonacoinTestnet is the Monacoin test network.
	MonacoinTestnet

	// MonacoinRegtest is the Monacoin regression test network.
	MonacoinRegtest

	// Myriad is the Myriad mainnet.
	Myriad

	// MyriadTestnet is the Myriad test network.
	MyriadTestnet

	// Namecoin is the Namecoin mainnet.
	Namecoin

	// NamecoinTestnet is the Namecoin test network.
	NamecoinTestnet

	// Peercoin is the Peercoin mainnet.
	Peercoin

	// PeercoinTestnet is the Peercoin test network.
	PeercoinTestnet

	// PKT is the PKT mainnet.
	PKT

	// PKTTestnet is the PKT test network.
	PKTTestnet

	// QuantumResistantLedger is the Quantum Resistant Ledger mainnet.
	QuantumResistantLedger

	// QuantumResistantLedgerTestnet is the Quantum Resistant Ledger test
	// network.
	QuantumResistantLedgerTestnet

	// Ravencoin is the Ravencoin mainnet.
	Ravencoin

	// RavencoinTestnet is the Ravencoin test network.
	RavencoinTestnet

	// Susucoin is the Susucoin mainnet.
	Susucoin

	// SusucoinTestnet is the Susucoin test network.
	SusucoinTestnet

	// Unite is the Unit-e mainnet.
	Unite

	// UniteTestnet is the Unit-e test network.
	UniteTestnet

	// Vertcoin is the Vertcoin mainnet.
	Vertcoin

	// VertcoinTestnet is the Vertcoin test network.
	VertcoinTestnet

	// Viacoin is the Viacoin mainnet.
	Viacoin

	// ViacoinTestnet is the Viacoin test network.
	ViacoinTestnet

	// VIPSTARCOIN is the VIPSTARCOIN mainnet.
	VIPSTARCOIN

	// VIPSTARCOINTestnet is the VIPSTARCOIN test network.
	VIPSTARCOINTestnet

	// ZenProtocol is the Zen Protocol mainnet.
	ZenProtocol

	// ZenProtocolTestnet is the Zen Protocol test network.
	ZenProtocolTestnet

	// Zilliqa is the Zilliqa mainnet.
	Zilliqa

	// ZilliqaTestnet is the Zilliqa test network.
	ZilliqaTestnet

	// numNetworks counts the networks defined above.  It must remain the
	// final value in the block so iterating up to it visits every
	// network exactly once.
	numNetworks
)

// hrps is the forward mapping from each network to its human-readable
// part.  It is maintained by hand together with networks below; the two
// maps must remain mutual inverses.
var hrps = map[Network]string{
	Bitcoin:                       "bc",
	Testnet:                       "tb",
	Signet:                        "sb",
	Regtest:                       "bcrt",
	Bellcoin:                      "bm",
	BellcoinTestnet:               "bt",
	BitZeny:                       "bz",
	BitZenyTestnet:                "tz",
	CranePay:                      "cp",
	CranePayTestnet:               "cpt",
	CryptoComChain:                "cro",
	CryptoComChainTestnet:         "tcro",
	DigiByte:                      "dgb",
	DigiByteTestnet:               "dgbt",
	FujiCoin:                      "fc",
	FujiCoinTestnet:               "tf",
	Groestlcoin:                   "grs",
	GroestlcoinTestnet:            "tgrs",
	Handshake:                     "hs",
	HandshakeTestnet:              "ts",
	Litecoin:                      "ltc",
	LitecoinTestnet:               "tltc",
	Monacoin:                      "mona",
	MonacoinTestnet:               "tmona",
	MonacoinRegtest:               "rmona",
	Myriad:                        "my",
	MyriadTestnet:                 "tm",
	Namecoin:                      "nc",
	NamecoinTestnet:               "tn",
	Peercoin:                      "xpc",
	PeercoinTestnet:               "tpc",
	PKT:                           "pkt",
	PKTTestnet:                    "tpk",
	QuantumResistantLedger:        "qrl",
	QuantumResistantLedgerTestnet: "tqrl",
	Ravencoin:                     "rc",
	RavencoinTestnet:              "tr",
	Susucoin:                      "susu",
	SusucoinTestnet:               "tutu",
	Unite:                         "ue",
	UniteTestnet:                  "tue",
	Vertcoin:                      "vtc",
	VertcoinTestnet:               "tvtc",
	Viacoin:                       "via",
	ViacoinTestnet:                "tvia",
	VIPSTARCOIN:                   "vips",
	VIPSTARCOINTestnet:            "tvips",
	ZenProtocol:                   "zen",
	ZenProtocolTestnet:            "tzn",
	Zilliqa:                       "zil",
	ZilliqaTestnet:                "tzil",
}

// networks is the reverse mapping from each human-readable part to its
// network.
var networks = map[string]Network{
	"bc":    Bitcoin,
	"tb":    Testnet,
	"sb":    Signet,
	"bcrt":  Regtest,
	"bm":    Bellcoin,
	"bt":    BellcoinTestnet,
	"bz":    BitZeny,
	"tz":    BitZenyTestnet,
	"cp":    CranePay,
	"cpt":   CranePayTestnet,
	"cro":   CryptoComChain,
	"tcro":  CryptoComChainTestnet,
	"dgb":   DigiByte,
	"dgbt":  DigiByteTestnet,
	"fc":    FujiCoin,
	"tf":    FujiCoinTestnet,
	"grs":   Groestlcoin,
	"tgrs":  GroestlcoinTestnet,
	"hs":    Handshake,
	"ts":    HandshakeTestnet,
	"ltc":   Litecoin,
	"tltc":  LitecoinTestnet,
	"mona":  Monacoin,
	"tmona": MonacoinTestnet,
	"rmona": MonacoinRegtest,
	"my":    Myriad,
	"tm":    MyriadTestnet,
	"nc":    Namecoin,
	"tn":    NamecoinTestnet,
	"xpc":   Peercoin,
	"tpc":   PeercoinTestnet,
	"pkt":   PKT,
	"tpk":   PKTTestnet,
	"qrl":   QuantumResistantLedger,
	"tqrl":  QuantumResistantLedgerTestnet,
	"rc":    Ravencoin,
	"tr":    RavencoinTestnet,
	"susu":  Susucoin,
	"tutu":  SusucoinTestnet,
	"ue":    Unite,
	"tue":   UniteTestnet,
	"vtc":   Vertcoin,
	"tvtc":  VertcoinTestnet,
	"via":   Viacoin,
	"tvia":  ViacoinTestnet,
	"vips":  VIPSTARCOIN,
	"tvips": VIPSTARCOINTestnet,
	"zen":   ZenProtocol,
	"tzn":   ZenProtocolTestnet,
	"zil":   Zilliqa,
	"tzil":  ZilliqaTestnet,
}

// networkNames maps each network to the name used when referring to it in
// logs and tool output.
var networkNames = map[Network]string{
	Bitcoin:                       "bitcoin",
	Testnet:                       "bitcoin-testnet",
	Signet:                        "bitcoin-signet",
	Regtest:                       "bitcoin-regtest",
	Bellcoin:                      "bellcoin",
	BellcoinTestnet:               "bellcoin-testnet",
	BitZeny:                       "bitzeny",
	BitZenyTestnet:                "bitzeny-testnet",
	CranePay:                      "cranepay",
	CranePayTestnet:               "cranepay-testnet",
	CryptoComChain:                "cryptocomchain",
	CryptoComChainTestnet:         "cryptocomchain-testnet",
	DigiByte:                      "digibyte",
	DigiByteTestnet:               "digibyte-testnet",
	FujiCoin:                      "fujicoin",
	FujiCoinTestnet:               "fujicoin-testnet",
	Groestlcoin:                   "groestlcoin",
	GroestlcoinTestnet:            "groestlcoin-testnet",
	Handshake:                     "handshake",
	HandshakeTestnet:              "handshake-testnet",
	Litecoin:                      "litecoin",
	LitecoinTestnet:               "litecoin-testnet",
	Monacoin:                      "monacoin",
	MonacoinTestnet:               "monacoin-testnet",
	MonacoinRegtest:               "monacoin-regtest",
	Myriad:                        "myriad",
	MyriadTestnet:                 "myriad-testnet",
	Namecoin:                      "namecoin",
	NamecoinTestnet:               "namecoin-testnet",
	Peercoin:                      "peercoin",
	PeercoinTestnet:               "peercoin-testnet",
	PKT:                           "pkt",
	PKTTestnet:                    "pkt-testnet",
	QuantumResistantLedger:        "qrl",
	QuantumResistantLedgerTestnet: "qrl-testnet",
	Ravencoin:                     "ravencoin",
	RavencoinTestnet:              "ravencoin-testnet",
	Susucoin:                      "susucoin",
	SusucoinTestnet:               "susucoin-testnet",
	Unite:                         "unit-e",
	UniteTestnet:                  "unit-e-testnet",
	Vertcoin:                      "vertcoin",
	VertcoinTestnet:               "vertcoin-testnet",
	Viacoin:                       "viacoin",
	ViacoinTestnet:                "viacoin-testnet",
	VIPSTARCOIN:                   "vipstarcoin",
	VIPSTARCOINTestnet:            "vipstarcoin-testnet",
	ZenProtocol:                   "zenprotocol",
	ZenProtocolTestnet:            "zenprotocol-testnet",
	Zilliqa:                       "zilliqa",
	ZilliqaTestnet:                "zilliqa-testnet",
}

// HRP returns the human-readable part for the network.  The mapping is
// total over the constants defined in this package; an out of range value
// returns the empty string.
func (n Network) HRP() string {
	return hrps[n]
}

// String returns the name used when referring to the network.  It
// implements the fmt.Stringer interface.
func (n Network) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return "unknown"
}

// Classify returns the network registered for the given human-readable
// part.  The second return value reports whether the prefix is known; an
// unrecognized prefix is not an error at this level.
func Classify(hrp string) (Network, bool) {
	n, ok := networks[hrp]
	return n, ok
}
