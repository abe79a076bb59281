package board

// monkeyMapYAML is the worked example board whose flat walk ends with
// password 6032.
const monkeyMapYAML = `
board:
  name: monkey-map
  legend:
    ".": open
    "#": wall
  layout:
    - "        ...#"
    - "        .#.."
    - "        #..."
    - "        ...."
    - "...#.......#"
    - "........#..."
    - "..#....#...."
    - "..........#."
    - "        ...#...."
    - "        .....#.."
    - "        .#......"
    - "        ......#."
  route: "10R5L5R10L4R5L5"
`
