// Copyright 2025 Certen Protocol
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dbm "github.com/cometbft/cometbft-db"

	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/config"
	"github.com/certen/threshold-ballot/ids"
	"github.com/certen/threshold-ballot/metrics"
	"github.com/certen/threshold-ballot/store"
	"github.com/certen/threshold-ballot/txn"
	"github.com/certen/threshold-ballot/validator"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to node YAML configuration")
		bundlePath  = flag.String("bundle", "", "Path to a JSON array of signed transaction envelopes to verify in order")
		printVotes  = flag.Bool("print-votes", false, "Print each Decryption's plaintext after a successful verify run")
		metricsAddr = flag.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090) instead of exiting after the bundle finishes")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[electionnode] ", log.LstdFlags)

	if *bundlePath == "" {
		logger.Fatal("missing -bundle")
	}

	st, err := openStore(*configPath)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	// certcrypto.New's defaults (no authenticators registered, a
	// NoopVerifier for shuffles) are test-only; a real deployment wires
	// configured registries in here before validating any transactions.
	suite := certcrypto.New()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	if err := runBundle(logger, st, suite, m, *bundlePath, *printVotes); err != nil {
		logger.Fatalf("verification failed: %v", err)
	}
	logger.Println("election verified OK")

	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		logger.Printf("serving metrics on %s", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			logger.Fatalf("metrics server: %v", err)
		}
	}
}

// openStore resolves the store backend named by configPath's node
// configuration, defaulting to an in-memory store when no config is
// given.
func openStore(configPath string) (store.Store, error) {
	if configPath == "" {
		return store.NewMemoryStore(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Backend == "memory" {
		return store.NewMemoryStore(), nil
	}
	db, err := dbm.NewGoLevelDB("electionnode", cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open leveldb at %s: %w", cfg.Store.Path, err)
	}
	return store.NewKVStore(db), nil
}

// bundleEntry is the on-disk JSON presentation of one signed transaction
// envelope: its canonical CBOR encoding (produced by txn.EncodeEnvelope),
// base64-wrapped by the standard library's json.Marshal of a []byte.
type bundleEntry struct {
	Envelope []byte `json:"envelope"`
}

func runBundle(logger *log.Logger, st store.Store, suite *certcrypto.Suite, m *metrics.Registry, path string, printVotes bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var entries []bundleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no transactions present in %s", path)
	}

	v := validator.New(st, suite)

	var electionID ids.Identifier
	for i, entry := range entries {
		envelope, err := txn.DecodeEnvelope(entry.Envelope)
		if err != nil {
			return fmt.Errorf("entry %d: decode: %w", i, err)
		}
		if i == 0 {
			if envelope.Transaction.Kind() != ids.Election {
				return fmt.Errorf("first transaction must be an Election")
			}
			electionID = envelope.Transaction.ID()
		}

		if err := v.Validate(envelope); err != nil {
			m.ObserveFailure(envelope.Transaction.Kind(), errorTag(err))
			return fmt.Errorf("entry %d (%s): %w", i, envelope.Transaction.ID(), err)
		}
		m.ObserveSuccess(envelope.Transaction.Kind())
		if err := st.Set(envelope); err != nil {
			return fmt.Errorf("entry %d: store: %w", i, err)
		}
	}

	for _, kind := range []ids.Type{ids.Vote, ids.Mix, ids.PartialDecryption, ids.Decryption} {
		all, err := st.GetMultiple(electionID, kind)
		if err != nil {
			return err
		}
		m.SetStoreSize(kind, len(all))
	}

	if printVotes {
		decryptions, err := st.GetMultiple(electionID, ids.Decryption)
		if err != nil {
			return err
		}
		logger.Println("votes:")
		for _, e := range decryptions {
			d, ok := e.Transaction.(txn.Decryption)
			if !ok {
				continue
			}
			logger.Printf("  %s", string(d.DecryptedVote))
		}
	}

	return nil
}

// errorTag renders err as the label metrics are keyed by. The typed
// errors that carry a transaction or trustee id are rendered as their Go
// type name via %T rather than their full message, to keep cardinality
// bounded; every other error is rendered as its full message.
func errorTag(err error) string {
	if err == nil {
		return ""
	}
	switch err.(type) {
	case *validator.TransactionNotFoundError,
		*validator.TrusteeDoesNotExistError,
		*validator.TrusteePublicKeyMismatchError,
		*validator.NotEnoughSharesError,
		*validator.VoteDecryptionFailedError:
		return fmt.Sprintf("%T", err)
	}
	return err.Error()
}
