package domain

// LedgerEntry is one labelled statistic of the stats ledger.
type LedgerEntry struct {
	Key  string
	Text string
}
