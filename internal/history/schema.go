package history

// Schema DDL for the run journal. The journal records operations that
// were performed, never matrix data itself; matrices live only in their
// text files.
const createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    operation TEXT NOT NULL,
    left_path TEXT NOT NULL,
    right_path TEXT NOT NULL,
    output_path TEXT NOT NULL,
    rows INTEGER NOT NULL,
    cols INTEGER NOT NULL,
    nonzero INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`
