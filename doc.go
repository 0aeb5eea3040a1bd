// Package portfolio normalizes brokerage-exported transaction and holdings
// files into a single transaction model and reconciles the normalized
// history against a current-holdings snapshot.
//
// The pipeline is a synchronous batch per file: raw text is tokenized into
// rows ([Tokenize]), the layout is classified ([Detect]), a per-format row
// mapper produces normalized [Transaction] records plus a [RowError] list,
// and [Reconcile] infers pre-history positions, cash flow, and return on
// investment. Every stage takes immutable input and returns a new result;
// nothing is shared across files.
//
// The per-format mappers live in their own packages (schwab, fidelity,
// tradelog); this package holds the model, the tokenizer, the detector, the
// reconciliation engine, and the export artifact.
package portfolio
