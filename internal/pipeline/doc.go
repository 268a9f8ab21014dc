// Package pipeline fans score collection out over the cataloged models.
//
// Each model's result shards are an independent unit of work; workers fill
// a private per-model slot and the merge happens only after every worker
// has finished, so no accumulator is ever shared. The merged outcome is
// identical for any worker count.
package pipeline
