package main

import (
	"time"

	"github.com/jessevdk/go-flags"
)

const (
	createSubCmd        = "create"
	getBalanceSubCmd    = "getbalance"
	sendSubCmd          = "send"
	createWalletSubCmd  = "createwallet"
	listAddressesSubCmd = "listaddresses"
	reindexSubCmd       = "reindex"
	printChainSubCmd    = "printchain"
	verifyChainSubCmd   = "verifychain"
	serveSubCmd         = "serve"
)

type globalConfig struct {
	DataDir           string        `long:"data-dir" env:"LEDGER_DATA_DIR" description:"directory holding the blocks, utxos and wallets stores" default:"data"`
	DBBackend         string        `long:"db-backend" env:"LEDGER_DB_BACKEND" description:"embedded store: leveldb, bolt or badger" default:"leveldb"`
	Network           string        `long:"network" env:"LEDGER_NETWORK" description:"address network: mainnet, testnet, regtest or signet" default:"mainnet"`
	RateLimitInterval time.Duration `long:"rate-limit-interval" env:"LEDGER_RATE_LIMIT_INTERVAL" description:"minimum time between two transfers from one address" default:"300s"`
	VerifyWorkers     int           `long:"verify-workers" env:"LEDGER_VERIFY_WORKERS" description:"signature verification goroutines, 0 uses every CPU" default:"0"`
	LogLevel          string        `long:"log-level" env:"LEDGER_LOG_LEVEL" description:"debug, info, warn or error" default:"warn"`
	LogJSON           bool          `long:"log-json" env:"LEDGER_LOG_JSON" description:"log as JSON"`
}

type createConfig struct {
	Args struct {
		Address string `positional-arg-name:"ADDRESS"`
	} `positional-args:"yes" required:"yes"`
}

type getBalanceConfig struct {
	Args struct {
		Address string `positional-arg-name:"ADDRESS"`
	} `positional-args:"yes" required:"yes"`
}

type sendConfig struct {
	Args struct {
		From   string `positional-arg-name:"FROM"`
		To     string `positional-arg-name:"TO"`
		Amount uint64 `positional-arg-name:"AMOUNT"`
	} `positional-args:"yes" required:"yes"`
}

type createWalletConfig struct{}

type listAddressesConfig struct{}

type reindexConfig struct{}

type printChainConfig struct{}

type verifyChainConfig struct{}

type serveConfig struct {
	Listen      string   `long:"listen" env:"LEDGER_LISTEN" description:"HTTP listen address" default:":8080"`
	CORSOrigins []string `long:"cors-origin" env:"LEDGER_CORS_ORIGINS" env-delim:"," description:"allowed CORS origin, repeatable; any origin when unset"`
}

func parseCommandLine(args []string) (subCommand string, global *globalConfig, config any, err error) {
	global = &globalConfig{}
	parser := flags.NewParser(global, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name, short, long string
		config            any
	}{
		{createSubCmd, "Creates a new blockchain", "Wipes any existing chain and mines a genesis block paying the reward to ADDRESS", &createConfig{}},
		{getBalanceSubCmd, "Shows the balance of an address", "Sums the unspent outputs locked to ADDRESS", &getBalanceConfig{}},
		{sendSubCmd, "Sends coins between two wallets", "Builds, signs and mines a transfer of AMOUNT from FROM to TO", &sendConfig{}},
		{createWalletSubCmd, "Creates a new wallet", "Generates a key pair and prints its address", &createWalletConfig{}},
		{listAddressesSubCmd, "Lists wallet addresses", "Prints the address of every stored wallet", &listAddressesConfig{}},
		{reindexSubCmd, "Rebuilds the UTXO index", "Rebuilds the UTXO index from the block log", &reindexConfig{}},
		{printChainSubCmd, "Prints the chain", "Prints every block from the tip to genesis", &printChainConfig{}},
		{verifyChainSubCmd, "Verifies the chain", "Checks links, proof of work, signatures, double spends and value conservation", &verifyChainConfig{}},
		{serveSubCmd, "Serves the ledger over HTTP", "Starts the JSON HTTP surface with /metrics", &serveConfig{}},
	}
	configs := make(map[string]any, len(commands))
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.config); err != nil {
			return "", nil, nil, err
		}
		configs[c.name] = c.config
	}

	if _, err := parser.ParseArgs(args); err != nil {
		return "", nil, nil, err
	}

	subCommand = parser.Command.Active.Name
	return subCommand, global, configs[subCommand], nil
}
