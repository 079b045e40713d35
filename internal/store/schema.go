package store

const schema = `
-- Aggregate per-user counters
CREATE TABLE IF NOT EXISTS users (
    user_id        INTEGER PRIMARY KEY,
    username       TEXT,
    first_name     TEXT,
    last_name      TEXT,
    first_seen     TEXT,
    last_seen      TEXT,
    total_messages INTEGER DEFAULT 0,
    about_clicks   INTEGER DEFAULT 0,
    cases_clicks   INTEGER DEFAULT 0
);

-- One row per event, for windowed stats
CREATE TABLE IF NOT EXISTS interactions (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    button  TEXT,
    ts      TEXT NOT NULL
);

-- Phone-number leads
CREATE TABLE IF NOT EXISTS applications (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id     INTEGER NOT NULL,
    username    TEXT,
    first_name  TEXT,
    last_name   TEXT,
    phone       TEXT NOT NULL,
    created_at  TEXT NOT NULL
);

-- Guards monthly report writes against duplicates
CREATE TABLE IF NOT EXISTS monthly_stats_saves (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    year        INTEGER NOT NULL,
    month       INTEGER NOT NULL,
    saved_at    TEXT NOT NULL,
    UNIQUE(year, month)
);
`
