package help

const ColdstartYAML = `# tweetstats Quick Start

schemes:
  condensed: "Per-year files: condensed_2009.json ... condensed_2018.json (default)"
  master: "Consolidated files: master_*.json"

outputs:
  console: "Record count, raw phrase counts and a markdown table on stdout"
  phrase_chart: "Bar chart of phrase percentages (default tweet_counts.png)"
  hour_chart: "Bar chart of tweets per hour of day (default tweet_hours.png)"
  summary: "Optional YAML manifest of the whole run"

commands:
  full_run: |
    tweetstats analyze

  master_files: |
    tweetstats analyze --scheme master --dir ./data

  custom_phrases: |
    tweetstats phrases --phrases "obama,fake news,wall"

  explicit_glob: |
    tweetstats analyze --pattern "archive/*.json" --summary results/summary.yaml

  hours_only: |
    tweetstats hours --hour-chart hours.svg

config_file: |
  # tweetstats.yaml (every key can also be set as TWEETSTATS_<SECTION>_<KEY>)
  input:
    scheme: condensed
    dir: .
  phrases: [obama, trump, mexico, russia, fake news, china, wall, mainstream media]
  output:
    phrase_chart: tweet_counts.png
    hour_chart: tweet_hours.png
    summary: ""
  logging:
    level: info

matching:
  rule: "Case-insensitive substring; each tweet counts at most once per phrase"
  note: "No word boundaries: 'china' also matches 'chinatown'"

exit_codes:
  0: "Table printed and charts written"
  1: "No input files, unparsable file, empty corpus or malformed created_at"
`
