package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS document (
    id               INTEGER PRIMARY KEY CHECK (id = 1),
    total_savings    REAL NOT NULL DEFAULT 0,
    last_login_date  TEXT NOT NULL DEFAULT '',
    tos_agreed       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS plans (
    id                 TEXT PRIMARY KEY,
    position           INTEGER NOT NULL,
    name               TEXT NOT NULL,
    start_date         TEXT NOT NULL,
    end_date           TEXT NOT NULL DEFAULT '',
    goal               REAL NOT NULL DEFAULT 0,
    mode               TEXT NOT NULL DEFAULT 'estimate',
    penalty_mode       INTEGER NOT NULL DEFAULT 0,
    day_active         INTEGER NOT NULL DEFAULT 0,
    daily_allowance    REAL NOT NULL DEFAULT 0,
    daily_spent        REAL NOT NULL DEFAULT 0,
    daily_savings_goal REAL NOT NULL DEFAULT 0,
    total_saved        REAL NOT NULL DEFAULT 0,
    total_spent        REAL NOT NULL DEFAULT 0,
    penalty_debt       REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS plan_exclusions (
    plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
    position   INTEGER NOT NULL,
    start_date TEXT NOT NULL,
    end_date   TEXT NOT NULL,
    PRIMARY KEY (plan_id, position)
);

CREATE TABLE IF NOT EXISTS plan_products (
    plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL,
    price      REAL NOT NULL,
    PRIMARY KEY (plan_id, position)
);

CREATE TABLE IF NOT EXISTS plan_history (
    plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    date        TEXT NOT NULL,
    total_saved REAL NOT NULL,
    PRIMARY KEY (plan_id, position)
);

CREATE TABLE IF NOT EXISTS doc_history (
    position INTEGER PRIMARY KEY,
    date     TEXT NOT NULL,
    savings  REAL NOT NULL
);
`
