package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Glyphs emitted by the field query. The shell maps them to styled cells.
const (
	BorderChar = '▀'
	SolidChar  = '█'
)

// setupSQL creates the two tables every match lives in: params holds the
// immutable field geometry, state holds the single row that the tick
// statement rewrites each frame.
const setupSQL = `
CREATE TABLE params (
  w            INTEGER NOT NULL,
  h            INTEGER NOT NULL,
  paddle_h     INTEGER NOT NULL,
  paddle_speed INTEGER NOT NULL,
  trigger_zone INTEGER NOT NULL
);

CREATE TABLE state (
  tick    INTEGER NOT NULL,
  a_y     INTEGER NOT NULL,
  b_y     INTEGER NOT NULL,
  ball_x  INTEGER NOT NULL,
  ball_y  INTEGER NOT NULL,
  vx      INTEGER NOT NULL,
  vy      INTEGER NOT NULL,
  score_a INTEGER NOT NULL,
  score_b INTEGER NOT NULL
);
`

// initStateSQL seeds the opening state: paddles centered, ball at the
// horizontal center with a randomized row, direction and angle bound by
// the caller.
const initStateSQL = `
INSERT INTO state
SELECT 0,
       (h - paddle_h) / 2,
       (h - paddle_h) / 2,
       w / 2,
       :serve_y,
       :serve_vx,
       :serve_vy,
       0,
       0
FROM params;
`

const snapshotSQL = `
SELECT tick, a_y, b_y, ball_x, ball_y, vx, vy, score_a, score_b FROM state;
`

const restoreSQL = `
UPDATE state
SET tick = :tick, a_y = :a_y, b_y = :b_y,
    ball_x = :ball_x, ball_y = :ball_y,
    vx = :vx, vy = :vy,
    score_a = :score_a, score_b = :score_b;
`

// frameSQL renders the whole field in one query: a row per y, built by
// classifying every (x, y) cell. Precedence is border, then paddles, then
// ball, then center line, so a ball crossing the center line stays visible.
const frameSQL = `
WITH RECURSIVE
p AS (SELECT * FROM params),
s AS (SELECT * FROM state),
ys(y) AS (SELECT 0 UNION ALL SELECT y + 1 FROM ys WHERE y + 1 < (SELECT h FROM params)),
xs(x) AS (SELECT 0 UNION ALL SELECT x + 1 FROM xs WHERE x + 1 < (SELECT w FROM params)),
cells AS (
  SELECT ys.y AS y, xs.x AS x,
         CASE
           WHEN ys.y = 0 OR ys.y = p.h - 1 THEN '▀'
           WHEN xs.x = 1 AND ys.y BETWEEN s.a_y AND s.a_y + p.paddle_h - 1 THEN '█'
           WHEN xs.x = p.w - 2 AND ys.y BETWEEN s.b_y AND s.b_y + p.paddle_h - 1 THEN '█'
           WHEN xs.x = s.ball_x AND ys.y = s.ball_y THEN '█'
           WHEN xs.x = p.w / 2 AND ys.y % 3 = 1 THEN '█'
           ELSE ' '
         END AS ch
  FROM p, s, ys, xs
)
SELECT group_concat(ch, '' ORDER BY x) AS line
FROM cells
GROUP BY y
ORDER BY y;
`

// buildTickSQL assembles the per-frame transition as one declarative
// statement. The CTE pipeline follows the required step order: AI decision,
// ball advance, wall bounce, paddle collision, scoring, state assembly.
// Only the per-tick random draws are bound at execution time; the AI tuning
// is baked into the statement when the match is created.
func buildTickSQL(ai AIConfig) string {
	defend := formatProb(ai.DefendProb)
	return fmt.Sprintf(`
WITH
p AS (SELECT * FROM params),
s AS (SELECT * FROM state),
ai AS (
  SELECT
    CASE
      WHEN s.vx < 0 AND s.ball_x <= p.trigger_zone THEN %s
      WHEN :a_def < %s THEN
        CASE WHEN s.ball_y < s.a_y + 2 THEN max(s.a_y - p.paddle_speed, 1)
             WHEN s.ball_y > s.a_y + p.paddle_h - 3 THEN min(s.a_y + p.paddle_speed, p.h - p.paddle_h - 1)
             ELSE s.a_y END
      ELSE s.a_y
    END AS a_y2,
    CASE
      WHEN s.vx > 0 AND s.ball_x >= p.w - 1 - p.trigger_zone THEN %s
      WHEN :b_def < %s THEN
        CASE WHEN s.ball_y < s.b_y + 2 THEN max(s.b_y - p.paddle_speed, 1)
             WHEN s.ball_y > s.b_y + p.paddle_h - 3 THEN min(s.b_y + p.paddle_speed, p.h - p.paddle_h - 1)
             ELSE s.b_y END
      ELSE s.b_y
    END AS b_y2
  FROM p, s
),
step AS (
  SELECT s.ball_x + s.vx AS nx, s.ball_y + s.vy AS ny, s.vx, s.vy FROM s
),
wall AS (
  SELECT nx,
         CASE WHEN ny <= 1 THEN 1 WHEN ny >= p.h - 2 THEN p.h - 2 ELSE ny END AS ny1,
         vx AS vx1,
         CASE WHEN ny <= 1 OR ny >= p.h - 2 THEN -vy ELSE vy END AS vy1
  FROM step, p
),
paddle AS (
  SELECT w.nx, w.ny1,
         CASE
           WHEN w.nx <= 1 AND w.vx1 < 0 AND w.ny1 BETWEEN ai.a_y2 AND ai.a_y2 + p.paddle_h - 1 THEN 1
           WHEN w.nx >= p.w - 2 AND w.vx1 > 0 AND w.ny1 BETWEEN ai.b_y2 AND ai.b_y2 + p.paddle_h - 1 THEN -1
           ELSE w.vx1 END AS vx2,
         CASE
           WHEN w.nx <= 1 AND w.vx1 < 0 AND w.ny1 BETWEEN ai.a_y2 AND ai.a_y2 + p.paddle_h - 1 THEN
             CASE WHEN w.ny1 - ai.a_y2 = 0 THEN -2
                  WHEN w.ny1 - ai.a_y2 <= 2 THEN -1
                  WHEN w.ny1 - ai.a_y2 <= 4 THEN 0
                  WHEN w.ny1 - ai.a_y2 <= 5 THEN 1
                  ELSE 2 END
           WHEN w.nx >= p.w - 2 AND w.vx1 > 0 AND w.ny1 BETWEEN ai.b_y2 AND ai.b_y2 + p.paddle_h - 1 THEN
             CASE WHEN w.ny1 - ai.b_y2 = 0 THEN -2
                  WHEN w.ny1 - ai.b_y2 <= 2 THEN -1
                  WHEN w.ny1 - ai.b_y2 <= 4 THEN 0
                  WHEN w.ny1 - ai.b_y2 <= 5 THEN 1
                  ELSE 2 END
           ELSE w.vy1 END AS vy2,
         ai.a_y2, ai.b_y2
  FROM wall AS w, ai, p
),
sc AS (
  SELECT CASE WHEN paddle.nx < 1 THEN 'B'
              WHEN paddle.nx > p.w - 2 THEN 'A'
              ELSE NULL END AS point_to,
         paddle.*, p.w AS w
  FROM paddle, p
),
next_state AS (
  SELECT s.tick + 1 AS tick,
         sc.a_y2 AS a_y, sc.b_y2 AS b_y,
         CASE WHEN sc.point_to IS NULL THEN sc.nx
              WHEN sc.point_to = 'A' THEN sc.w / 2 + 1
              ELSE sc.w / 2 - 1 END AS ball_x,
         CASE WHEN sc.point_to IS NULL THEN sc.ny1 ELSE :serve_y END AS ball_y,
         CASE WHEN sc.point_to IS NULL THEN sc.vx2
              WHEN sc.point_to = 'A' THEN -1
              ELSE 1 END AS vx,
         CASE WHEN sc.point_to IS NULL THEN sc.vy2 ELSE :serve_vy END AS vy,
         s.score_a + CASE WHEN sc.point_to = 'A' THEN 1 ELSE 0 END AS score_a,
         s.score_b + CASE WHEN sc.point_to = 'B' THEN 1 ELSE 0 END AS score_b
  FROM sc, s
)
UPDATE state
SET tick = n.tick, a_y = n.a_y, b_y = n.b_y,
    ball_x = n.ball_x, ball_y = n.ball_y,
    vx = n.vx, vy = n.vy,
    score_a = n.score_a, score_b = n.score_b
FROM next_state AS n;
`,
		aimCase(ai.Buckets, ":a_aim"), defend,
		aimCase(ai.Buckets, ":b_aim"), defend,
	)
}

// aimCase builds the weighted-bucket CASE for one side's trick shot.
// The target is clamped into the full paddle range on both ends so an
// aggressive shot can never park a paddle outside the field.
func aimCase(buckets []AimBucket, param string) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for i, b := range buckets {
		if i == len(buckets)-1 {
			fmt.Fprintf(&sb, "\n        ELSE %s", aimTarget(b.Offset))
		} else {
			fmt.Fprintf(&sb, "\n        WHEN %s < %s THEN %s", param, formatProb(b.Cumulative), aimTarget(b.Offset))
		}
	}
	sb.WriteString("\n      END")
	return sb.String()
}

func aimTarget(offset int) string {
	return fmt.Sprintf("min(max(s.ball_y - %d, 1), p.h - p.paddle_h - 1)", offset)
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
