// Package layout builds the reusable pieces of a quotation document: the
// items table, the totals block, label/value field groups, the terms and
// conditions section and the page footer.
//
// Every builder returns fresh docdef blocks. Nothing here loads assets or
// computes money; figures arrive already computed by internal/totals and
// are only formatted.
package layout
