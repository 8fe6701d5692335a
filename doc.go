// Package tally records personal income and expenses and reports monthly
// totals. It is local-first: the whole ledger is a plain text file, one
// transaction per line, that can be edited by hand and kept under version
// control.
//
// The core functionalities include:
//   - Ledger Management: an ordered, append-only list of transactions, loaded
//     from and saved to the ledger file (see Ledger.Load and Ledger.Save).
//   - Monthly Summary: income, expense and net totals of a month, with a
//     breakdown per category (see MonthlySummary).
//   - Session: the operations of an interactive front end over an explicit
//     ledger value (see Session).
//
// The ledger file format is
//
//	<KIND>,<category>,<amount>,<YYYY-MM-DD>
//
// where KIND is INCOME or EXPENSE, amount a non-negative decimal and only
// the year and month of the date are used to aggregate.
//
// This package serves as the foundational logic for the `et` command-line
// tool.
package tally
