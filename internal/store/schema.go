package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshot_meta (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    fetched_at      TEXT NOT NULL,
    total_expenses  REAL NOT NULL,
    expense_count   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_expenses (
    position   INTEGER PRIMARY KEY,
    expense_id TEXT NOT NULL,
    amount     REAL NOT NULL,
    category   TEXT NOT NULL,
    date       TEXT,
    notes      TEXT
);

CREATE TABLE IF NOT EXISTS snapshot_budgets (
    position  INTEGER PRIMARY KEY,
    budget_id TEXT NOT NULL,
    type      TEXT NOT NULL,
    category  TEXT,
    amount    REAL NOT NULL,
    month     INTEGER NOT NULL,
    year      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_goals (
    position       INTEGER PRIMARY KEY,
    goal_id        TEXT NOT NULL,
    title          TEXT NOT NULL,
    target_amount  REAL NOT NULL,
    current_amount REAL NOT NULL,
    target_date    TEXT
);

CREATE TABLE IF NOT EXISTS snapshot_categories (
    category TEXT PRIMARY KEY,
    total    REAL NOT NULL
);
`
