package arch

// tableRow is one row of the static architecture table: a Debian
// architecture label, its (abi, libc, os, cpu) decomposition, and its
// multiarch tuple, per dpkg's cputable/ostable data.
type tableRow struct {
	name string
	abi  string
	libc string
	os   string
	cpu  string

	isa      string
	syscall  string
	userland string
}

var table = []tableRow{
	{"alpha", "base", "gnu", "linux", "alpha", "alpha", "linux", "gnu"},
	{"amd64", "base", "gnu", "linux", "amd64", "x86_64", "linux", "gnu"},
	{"arc", "base", "gnu", "linux", "arc", "arc", "linux", "gnu"},
	{"arm", "base", "gnu", "linux", "arm", "arm", "linux", "gnu"},
	{"arm64", "base", "gnu", "linux", "arm64", "aarch64", "linux", "gnu"},
	{"armel", "eabi", "gnu", "linux", "arm", "arm", "linux", "gnueabi"},
	{"armhf", "eabihf", "gnu", "linux", "arm", "arm", "linux", "gnueabihf"},
	{"hppa", "base", "gnu", "linux", "hppa", "hppa", "linux", "gnu"},
	{"hurd-i386", "base", "gnu", "hurd", "i386", "i386", "hurd", "gnu"},
	{"hurd-amd64", "base", "gnu", "hurd", "amd64", "x86_64", "hurd", "gnu"},
	{"i386", "base", "gnu", "linux", "i386", "i386", "linux", "gnu"},
	{"ia64", "base", "gnu", "linux", "ia64", "ia64", "linux", "gnu"},
	{"kfreebsd-amd64", "base", "gnu", "kfreebsd", "amd64", "x86_64", "kfreebsd", "gnu"},
	{"kfreebsd-i386", "base", "gnu", "kfreebsd", "i386", "i386", "kfreebsd", "gnu"},
	{"loong64", "base", "gnu", "linux", "loong64", "loongarch64", "linux", "gnu"},
	{"m68k", "base", "gnu", "linux", "m68k", "m68k", "linux", "gnu"},
	{"mips", "base", "gnu", "linux", "mips", "mips", "linux", "gnu"},
	{"mipsel", "base", "gnu", "linux", "mipsel", "mipsel", "linux", "gnu"},
	{"mips64", "abi64", "gnu", "linux", "mips64", "mips64", "linux", "gnuabi64"},
	{"mips64el", "abi64", "gnu", "linux", "mips64el", "mips64el", "linux", "gnuabi64"},
	{"mipsn32", "abin32", "gnu", "linux", "mipsn32", "mipsn32", "linux", "gnuabin32"},
	{"mipsn32el", "abin32", "gnu", "linux", "mipsn32el", "mipsn32el", "linux", "gnuabin32"},
	{"mips64r6", "abi64", "gnu", "linux", "mips64r6", "mips64r6", "linux", "gnuabi64"},
	{"mips64r6el", "abi64", "gnu", "linux", "mips64r6el", "mips64r6el", "linux", "gnuabi64"},
	{"mipsn32r6", "abin32", "gnu", "linux", "mipsn32r6", "mipsn32r6", "linux", "gnuabin32"},
	{"mipsn32r6el", "abin32", "gnu", "linux", "mipsn32r6el", "mipsn32r6el", "linux", "gnuabin32"},
	{"powerpc", "base", "gnu", "linux", "powerpc", "powerpc", "linux", "gnu"},
	{"powerpcspe", "base", "gnu", "linux", "powerpcspe", "powerpcspe", "linux", "gnuspe"},
	{"ppc64", "base", "gnu", "linux", "ppc64", "powerpc64", "linux", "gnu"},
	{"ppc64el", "base", "gnu", "linux", "ppc64el", "powerpc64le", "linux", "gnu"},
	{"riscv64", "base", "gnu", "linux", "riscv64", "riscv64", "linux", "gnu"},
	{"s390", "base", "gnu", "linux", "s390", "s390", "linux", "gnu"},
	{"s390x", "base", "gnu", "linux", "s390x", "s390x", "linux", "gnu"},
	{"sh4", "base", "gnu", "linux", "sh4", "sh4", "linux", "gnu"},
	{"sparc", "base", "gnu", "linux", "sparc", "sparc", "linux", "gnu"},
	{"sparc64", "base", "gnu", "linux", "sparc64", "sparc64", "linux", "gnu"},
	{"x32", "x32", "gnu", "linux", "amd64", "x86_64", "linux", "gnux32"},
}

var (
	byName      map[string]Architecture
	tupleByName map[string]Tuple
	nameByTuple map[Tuple]string
)

func init() {
	byName = make(map[string]Architecture, len(table))
	tupleByName = make(map[string]Tuple, len(table))
	nameByTuple = make(map[Tuple]string, len(table))

	for _, row := range table {
		a := Architecture{name: row.name, abi: row.abi, libc: row.libc, os: row.os, cpu: row.cpu}
		t := Tuple{InstructionSet: row.isa, SyscallABI: row.syscall, Userland: row.userland}
		byName[row.name] = a
		tupleByName[row.name] = t
		nameByTuple[t] = row.name
	}
}

// Names returns every well-known architecture label in the table, in
// table order. Does not include the source/all/any sentinels.
func Names() []string {
	names := make([]string, len(table))
	for i, row := range table {
		names[i] = row.name
	}
	return names
}
