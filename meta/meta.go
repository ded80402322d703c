// meta/meta.go
package meta

// OUTPUT_DIR defines where experiment records are stored.
const OUTPUT_DIR = "experiments"

// LOG_LEVEL defines the default zerolog level of the driver.
const LOG_LEVEL = "info"

// TRIALS defines the number of rebuild trials per insertion order.
const TRIALS = 5

// KEYS defines the number of keys inserted per rebuild trial.
const KEYS = 100

// SEED seeds the shuffled insertion orders.
const SEED = 1

// ENV_PREFIX prefixes environment overrides, e.g. GAMETREE_TRIALS.
const ENV_PREFIX = "GAMETREE"
