package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per completed aggregation run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Inputs
    manifest_source TEXT NOT NULL,     -- manifest path, or "-" for stdin
    input_dir TEXT,
    output_path TEXT NOT NULL,

    -- Outcome
    number_processed INTEGER NOT NULL DEFAULT 0,
    skipped_missing INTEGER NOT NULL DEFAULT 0,

    -- Status histogram, one column per code in code order
    num_success INTEGER NOT NULL DEFAULT 0,            -- code 0
    num_zero_results INTEGER NOT NULL DEFAULT 0,       -- code 1
    num_input_missing INTEGER NOT NULL DEFAULT 0,      -- code 2
    num_load_error INTEGER NOT NULL DEFAULT 0,         -- code 3
    num_input_extra INTEGER NOT NULL DEFAULT 0,        -- code 4
    num_unknown_shape INTEGER NOT NULL DEFAULT 0,      -- code 5
    num_unknown INTEGER NOT NULL DEFAULT 0             -- code 6
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
