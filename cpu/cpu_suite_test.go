package cpu

//go:generate go tool mockgen -destination "mock_observer_test.go" -package $GOPACKAGE -write_package_comment=false github.com/ezrec/minisys/cpu Observer
