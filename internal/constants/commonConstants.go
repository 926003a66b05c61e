package constants

type CachePrefix string

const (
	CachePrefixProductBarcode CachePrefix = "product:barcode:"
)
