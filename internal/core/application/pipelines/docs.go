// Package pipelines implements the three stages that drive supply orders
// through their lifecycle.
//
//  1. OrderCreationPipeline turns Registered orders into outbound order
//     files (Registered -> Created/Stopped/Error/Processed/Canceled).
//  2. ResponseIngestionPipeline applies inbound partner response files to
//     eligible orders and archives the files
//     (Created/Processing -> Processing/Processed/Error).
//  3. ConfirmationDeliveryPipeline packages and uploads the confirmation
//     for acknowledged orders (FtpStatus NotSent -> Sent/SendFailed).
//
// Each pipeline exposes Run(ctx) with side effects only: it derives its
// work from persisted state, so running it again after any failure is
// safe — a row left in a non-terminal state is simply selected again on
// the next cycle. A failure on one order never aborts the batch; it is
// logged, recorded on that order's row, and the loop moves on.
package pipelines
