package memory

// WorstFit shares its implementation with BestFit (see FreeListManager
// in bestfit.go) — the two policies differ only in which free block
// selectBestFit/selectWorstFit pick out of the list, not in how
// admission or release otherwise works. This file exists so the policy
// has a visible home matching the reference tool's separate
// bestFit()/worstFit() functions.
